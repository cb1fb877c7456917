package common

const (
	// BridgeConfigName is the name of the bridge configuration file that
	// describes how the foreign frontend should be invoked
	BridgeConfigName = "sable-bridge.toml"

	SableVersion = "0.1.0"
)
