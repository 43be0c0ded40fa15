package config

import (
	"errors"
	"flag"
	"os"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags from os.Args.
//
// Flags:
//
//	-a store address in format [host]:[port]
//	-api-key store API key
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-page-size list page size
//	-search-page-size search result bound
//	-refresh-interval background refresh interval (e.g., "5m")
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	return parseFlags(os.Args[1:])
}

func parseFlags(args []string) *StructuredConfig {
	var storeAddress NetAddress
	var apiKey string
	var requestTimeout time.Duration
	var pageSize int
	var searchPageSize int
	var refreshInterval time.Duration
	var jsonConfigPath string

	fs := flag.NewFlagSet("secretpanel", flag.ContinueOnError)
	fs.Var(&storeAddress, "a", "Store address host:port")
	fs.StringVar(&apiKey, "api-key", "", "Store API key")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.IntVar(&pageSize, "page-size", 0, "List page size")
	fs.IntVar(&searchPageSize, "search-page-size", 0, "Search result bound")
	fs.DurationVar(&refreshInterval, "refresh-interval", 0, "Background refresh interval (e.g., 5m)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	_ = fs.Parse(args)

	return &StructuredConfig{
		Store: Store{
			HTTPAddress:    storeAddress.String(),
			APIKey:         apiKey,
			RequestTimeout: requestTimeout,
		},
		Panel: Panel{
			PageSize:       pageSize,
			SearchPageSize: searchPageSize,
		},
		Workers: Workers{
			RefreshInterval: refreshInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress, or an
// empty string when neither host nor port is set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the
// NetAddress. It validates the port range and returns an error if the
// format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host == "" {
		return errors.New("host must not be empty")
	}

	a.Host = host
	a.Port = port
	return nil
}
