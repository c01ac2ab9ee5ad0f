// Package config manages the single persisted configuration record stored at
// <os config dir>/initai/config.yaml. The record names the template store
// directory and the default template. It is created by SetTemplatePath and
// replaced wholesale on every save; there is no per-field update.
package config
