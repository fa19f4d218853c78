// Package config loads runtime configuration for the award console.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   address:port of the award service
//	-t string   transport: grpc or ws
//	-r int      request timeout (seconds)
//	-i int      online status check interval (seconds)
//	-d string   local database path
//	-l string   log level
//
// # JSON schema
//
// Durations use timex.Duration, so values can be either strings like "10s"
// or integer nanoseconds:
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "transport": "ws",
//	  "request_timeout": "10s",
//	  "online_check_interval": "3s",
//	  "database_path": "acp.db",
//	  "access_token": "eyJ...",
//	  "log_level": "debug",
//	  "s3": {
//	    "region": "us-east-1",
//	    "bucket": "awards",
//	    "base_endpoint": "http://127.0.0.1:9000",
//	    "access_key": "minio",
//	    "secret_key": "minio123"
//	  }
//	}
//
// The access token and S3 keys have no flags; an empty token is prompted for
// at startup.
package config
