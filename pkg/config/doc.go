/*
Package config loads and validates the run configuration for wikicopy.

	   +------------------+        +-------------------+
	   |  settings file   |        |  environment      |
	   | (yaml/json/hcl)  |        |  + .env file      |
	   +--------+---------+        +---------+---------+
	            |                            |
	            v                            v
	      LoadSettings                LoadCredentials
	            |                            |
	            +------------+---------------+
	                         |
	                         v
	                 +-------+-------+
	                 |    Config     |
	                 |  (Validate)   |
	                 +---------------+

🎯 Purpose:
- Resolves the platform credentials (USERNAME, API_TOKEN, BASE_URL)
- Loads the tuning settings on top of Default()
- Rejects an incomplete configuration before any network call

🔄 Flow:
1. Start from Default()
2. Overlay the settings file, picked by extension
3. Read credentials from the process environment, then the .env file
4. Validate; every failure wraps ErrConfiguration

⚡ Notes:
- The process environment wins over the .env file
- A missing .env file is fine, a missing explicit settings file is not
- HCL settings may reference the environment as env.NAME

🔍 Example:

	cfg, err := config.Load(ctx, ".wikicopy.yaml", true, ".env", os.LookupEnv)
	if errors.Is(err, config.ErrConfiguration) {
		// nothing has been sent to the platform yet
		return err
	}
*/
package config
