package config

import (
	"flag"
	"time"

	"github.com/dmitrijs2005/postdesk/internal/flagx"
)

// parseFlags overlays Config with command-line flags. Only the flags listed
// here are looked at; the rest of args is filtered out by flagx.FilterArgs.
// Durations come in whole seconds, except -m which is in milliseconds, and
// are only written back when their flag was given, so finer values from the
// config file survive.
func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-a", "-t", "-n", "-m", "-i", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the posts API")
	requestTimeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.IntVar(&cfg.PageSize, "n", cfg.PageSize, "number of posts to keep after load")
	messageTTL := fs.Int("m", int(cfg.SuccessMessageTTL.Milliseconds()), "success message lifetime (in milliseconds)")
	onlineCheckInterval := fs.Int("i", int(cfg.OnlineCheckInterval.Seconds()), "online check interval (in seconds, 0 disables)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if set["t"] {
		cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
	}
	if set["m"] {
		cfg.SuccessMessageTTL = time.Duration(*messageTTL) * time.Millisecond
	}
	if set["i"] {
		cfg.OnlineCheckInterval = time.Duration(*onlineCheckInterval) * time.Second
	}
}
