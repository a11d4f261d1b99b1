package config

import "os"

// applyEnv overrides file values from EDITORCAL_* environment variables.
// Env wins over the file so deployments can keep credentials out of it.
func applyEnv(c *Config) {
	setIfPresent(&c.ListenAddr, "EDITORCAL_LISTEN_ADDR")
	setIfPresent(&c.Store.Backend, "EDITORCAL_STORE_BACKEND")
	setIfPresent(&c.Store.SpreadsheetID, "EDITORCAL_SPREADSHEET_ID")
	setIfPresent(&c.Store.Worksheet, "EDITORCAL_WORKSHEET")
	setIfPresent(&c.Store.CredentialsFile, "EDITORCAL_CREDENTIALS_FILE")
	setIfPresent(&c.Store.DataDir, "EDITORCAL_DATA_DIR")
}

func setIfPresent(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
