// Package main provides privgate-inspect, a diagnostic tool that prints the
// capability profile resolved for the current host.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/privgate/privgate/internal/hostcompat"
)

var asJSON = flag.Bool("json", false, "emit the profile as JSON")

func main() {
	flag.Parse()
	if err := run(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "privgate-inspect: %v\n", err)
		os.Exit(1)
	}
}

func run(out *os.File) error {
	profile := hostcompat.CurrentProfile()

	if *asJSON {
		report := struct {
			Capabilities map[string]bool   `json:"capabilities"`
			Strategies   map[string]string `json:"strategies"`
		}{
			Capabilities: capabilityMap(profile),
			Strategies:   profile.Strategies(),
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	caps := capabilityMap(profile)
	names := make([]string, 0, len(caps))
	for name := range caps {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(out, "capabilities:")
	for _, name := range names {
		fmt.Fprintf(out, "  %-20s %v\n", name, caps[name])
	}

	strategies := profile.Strategies()
	keys := make([]string, 0, len(strategies))
	for key := range strategies {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	fmt.Fprintln(out, "strategies:")
	for _, key := range keys {
		fmt.Fprintf(out, "  %-20s %s\n", key, strategies[key])
	}

	if err := profile.Validate(); err != nil {
		fmt.Fprintf(out, "validation: %v\n", err)
	} else {
		fmt.Fprintln(out, "validation: ok")
	}
	return nil
}

func capabilityMap(p *hostcompat.Profile) map[string]bool {
	return map[string]bool{
		"process_vm_readv":  p.HasProcessVMReadv,
		"openat2":           p.HasOpenat2,
		"close_range":       p.HasCloseRange,
		"pidfd_send_signal": p.HasPidfdSendSignal,
	}
}
