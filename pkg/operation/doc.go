/*
Package operation implements the bulk copy and sweep logic of wikicopy.

	+-------------+     +-----------+     +-------------+
	|   Sweeper   | --> |  Loader   | --> |   Runner    |
	| (delete old)|     | (dedupe)  |     | (pool of 2) |
	+-------------+     +-----------+     +------+------+
	                                             |
	                                      +------+------+
	                                      |  Executor   |
	                                      | (copy+poll) |
	                                      +-------------+

🎯 Purpose:
- Purge stale copies under every unprotected destination homepage
- Turn copy rows into a deduplicated, ordered work list
- Run the copies on a small paced worker pool
- Report one outcome per request and an aggregate summary

🔄 Flow:
1. Sweeper lists the children of each destination and deletes them recursively
2. Sweeper re-reads the children and warns about anything left behind
3. Loader drops malformed rows and collapses duplicate (source, destination) pairs
4. Runner submits one request per pacing interval to at most N workers
5. Executor copies, polls async tasks and retries failed attempts

⚡ Outcomes:
- SUCCESS: the platform copied the tree
- SKIPPED_NONCRITICAL: the destination already holds the resulting titles
- FAILED: the retry budget ran out, the last error is kept as detail

Only configuration problems stop a run. Everything else is caught at the item
boundary and shows up in the result.

🔍 Example:

	orch, err := operation.New(operation.Options{Client: client, Config: cfg})
	if err != nil {
		return err
	}
	plan, err := operation.ReadPlan(ctx, cfg.Data)
	if err != nil {
		return err
	}
	res := orch.Run(ctx, plan)
	if !res.OK() {
		return errors.New("some copies failed")
	}
*/
package operation
