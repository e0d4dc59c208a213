package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
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

// parseFlags parses command-line flags from args into a configuration layer.
// Flags left unset stay at their zero values and do not override other
// layers.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-root config root directory
//	-mod-name directory name under the config root
//	-file override file name
//	-host-shape host record shape (modern|legacy)
//	-log-level log level (debug, info, warn, error)
//	-b baseline document path ("-" for stdin)
//	-o output document path ("-" for stdout)
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var requestTimeout time.Duration
	var configRoot, modName, fileName string
	var hostShape, logLevel string
	var baselinesPath, outputPath string
	var jsonConfigPath string

	fs := flag.NewFlagSet("climateadjuster", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&configRoot, "root", "", "Config root directory")
	fs.StringVar(&modName, "mod-name", "", "Directory name under the config root")
	fs.StringVar(&fileName, "file", "", "Override file name")
	fs.StringVar(&hostShape, "host-shape", "", "Host record shape (modern|legacy)")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&baselinesPath, "b", "", "Baseline document path, - for stdin")
	fs.StringVar(&outputPath, "o", "", "Output document path, - for stdout")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParsingFlags, err)
	}

	return &StructuredConfig{
		App: App{
			ModName:   modName,
			HostShape: hostShape,
			LogLevel:  logLevel,
		},
		Storage: Storage{
			ConfigRoot: configRoot,
			FileName:   fileName,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Host: Host{
			BaselinesPath: baselinesPath,
			OutputPath:    outputPath,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// An empty host binds every interface; any other host must be "localhost" or
// an IP address.
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

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "" && host != "localhost" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
