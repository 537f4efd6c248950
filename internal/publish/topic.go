// internal/publish/topic.go
package publish

import "strings"

// TopicRoot is the first segment of every topic.
const TopicRoot = "meters"

// DeriveTopic maps a descriptor name and unit to meters/<device>/<name>_<unit>.
// Bit-exact: name is lowercased with spaces turned into underscores,
// unit is lowercased with the degree sign removed. Nothing else is touched.
func DeriveTopic(device, name, unit string) string {
	n := strings.ReplaceAll(strings.ToLower(name), " ", "_")
	u := strings.ReplaceAll(strings.ToLower(unit), "°", "")
	return TopicRoot + "/" + device + "/" + n + "_" + u
}

// OnlineTopic carries the liveness timestamp after each completed pass.
func OnlineTopic(device string) string {
	return TopicRoot + "/" + device + "/online"
}
