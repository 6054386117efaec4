// Package config loads runtime configuration for the postdesk CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file selected via -c or -config. Files ending in
//     .yaml or .yml are read as YAML, anything else as JSON.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the posts API
//	-t int      request timeout (seconds)
//	-n int      number of posts kept after a load (at least 1)
//	-m int      success message lifetime (milliseconds)
//	-i int      online status check interval (seconds, 0 disables)
//	-l string   log level: debug, info, warn, error
//
// File schema
//
// Durations accept strings like "3s" or integer nanoseconds:
//
//	{
//	  "api_base_url": "https://jsonplaceholder.typicode.com",
//	  "request_timeout": "10s",
//	  "page_size": 10,
//	  "success_message_ttl": "3s",
//	  "online_check_interval": "15s",
//	  "log_level": "warn"
//	}
//
// Keys missing from the file keep their previous value. An explicit zero is
// applied, so "online_check_interval": 0 disables the online check. A page
// size below 1 is rejected whatever its source.
package config
