package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/atlanticdynamic/hellodevops/internal/fancy"
)

// String renders the configuration as a tree
func (c Config) String() string {
	root := fancy.Tree(fmt.Sprintf("hellodevops config (%s)", c.Version))

	listener := fancy.BranchNode("Listener", fancy.ListenerText(c.Listener.Addr()))
	listener.Child(fancy.KeyValue("Read timeout", c.Listener.ReadTimeout))
	listener.Child(fancy.KeyValue("Write timeout", c.Listener.WriteTimeout))
	listener.Child(fancy.KeyValue("Idle timeout", c.Listener.IdleTimeout))
	listener.Child(fancy.KeyValue("Drain timeout", c.Listener.DrainTimeout))
	if len(c.Listener.Headers) > 0 {
		headers := fancy.BranchNode("Headers", fmt.Sprintf("(%d)", len(c.Listener.Headers)))
		keys := make([]string, 0, len(c.Listener.Headers))
		for k := range c.Listener.Headers {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			headers.Child(fmt.Sprintf("%s: %s", k, fancy.TruncateString(c.Listener.Headers[k], 60)))
		}
		listener.Child(headers)
	}
	root.Child(listener)

	output := c.Logging.Output
	if output == "" {
		output = "stderr"
	}
	logs := fancy.BranchNode("Logging", strings.ToLower(c.Logging.Format))
	logs.Child(fancy.KeyValue("Level", c.Logging.Level))
	logs.Child(fancy.KeyValue("Output", output))
	root.Child(logs)

	metrics := "disabled"
	if c.Metrics.Enabled {
		metrics = c.Metrics.Path
	}
	root.Child(fancy.KeyValue("Metrics", metrics))

	return root.String()
}
