package config

import (
	"fmt"
	"strings"

	"github.com/remiges-tech/rigel"
	"github.com/remiges-tech/rigel/etcd"
)

// Rigel coordinates of the nepaliword configuration.
const (
	RigelApp           = "nepaliword"
	RigelModule        = "server"
	RigelSchemaVersion = 1
)

// LoadConfigFromFile loads a JSON or YAML file into appConfig and applies defaults.
func LoadConfigFromFile(filePath string, appConfig *AppConfig) error {
	configSource, err := newFile(filePath)
	if err != nil {
		return fmt.Errorf("Failed to create File config source: %v", err)
	}

	err = Load(configSource, appConfig)
	if err != nil {
		return fmt.Errorf("Error loading config: %v", err)
	}

	appConfig.ApplyDefaults()
	return nil
}

// NewRigelClient connects to etcd and returns a Rigel client for the named config.
func NewRigelClient(etcdEndpoints, configName string) (*rigel.Rigel, error) {
	etcdStorage, err := etcd.NewEtcdStorage(strings.Split(etcdEndpoints, ","))
	if err != nil {
		return nil, fmt.Errorf("Failed to create EtcdStorage: %v", err)
	}

	return rigel.New(etcdStorage, RigelApp, RigelModule, RigelSchemaVersion, configName), nil
}
