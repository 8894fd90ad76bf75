package config

import (
	"os"
	"strconv"
)

// MaxNodesEnv names the environment variable holding the default node budget.
const MaxNodesEnv = "LINKLAB_MAX_NODES"

// MaxNodes returns the node budget for the interactive counter list.
// It is read from the LINKLAB_MAX_NODES environment variable. Zero means
// unlimited; unset, negative, or malformed values also yield zero.
func MaxNodes() int {
	n, err := strconv.Atoi(os.Getenv(MaxNodesEnv))
	if err != nil || n < 0 {
		return 0
	}

	return n
}
