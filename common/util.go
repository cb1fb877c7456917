package common

import "hash/fnv"

// GenerateIDFromName takes a full module name and converts it into a numeric
// ID; this is used by host modules to generate their unique IDs
func GenerateIDFromName(name string) uint {
	h := fnv.New32a()
	h.Write([]byte(name))
	return uint(h.Sum32())
}
