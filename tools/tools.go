// +build tools

package tools

import (
	// Import the external tools so go modules downloads them and does not
	// tidy them away.
	_ "github.com/golang/mock/mockgen"
)
