// This file is part of Tasedit.
//
// Tasedit is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Tasedit is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Tasedit.  If not, see <https://www.gnu.org/licenses/>.

package prefs

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// prefs strings have the form "key::value; key::value"
const (
	cmdLineKVSep    = "::"
	cmdLineEntrySep = ";"
)

// a single group of command line preferences. values are removed from the
// group as they are used.
type cmdLineGroup map[string]string

var cmdLine struct {
	crit  sync.Mutex
	stack []cmdLineGroup
}

// PushCommandLineStack parses the prefs string and adds the resulting group
// of preferences to the top of the stack. Malformed entries in the string are
// ignored.
func PushCommandLineStack(prefs string) {
	grp := make(cmdLineGroup)
	for _, e := range strings.Split(prefs, cmdLineEntrySep) {
		kv := strings.Split(e, cmdLineKVSep)
		if len(kv) != 2 {
			continue
		}
		k := strings.TrimSpace(kv[0])
		if k == "" {
			continue
		}
		grp[k] = strings.TrimSpace(kv[1])
	}

	cmdLine.crit.Lock()
	defer cmdLine.crit.Unlock()
	cmdLine.stack = append(cmdLine.stack, grp)
}

// PopCommandLineStack removes the top group from the stack and returns the
// entries of the group that were never used, as a normalised prefs string.
func PopCommandLineStack() string {
	cmdLine.crit.Lock()
	defer cmdLine.crit.Unlock()

	if len(cmdLine.stack) == 0 {
		return ""
	}

	grp := cmdLine.stack[len(cmdLine.stack)-1]
	cmdLine.stack = cmdLine.stack[:len(cmdLine.stack)-1]

	keys := make([]string, 0, len(grp))
	for k := range grp {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := make([]string, 0, len(keys))
	for _, k := range keys {
		s = append(s, fmt.Sprintf("%s%s%s", k, cmdLineKVSep, grp[k]))
	}

	return strings.Join(s, cmdLineEntrySep+" ")
}

// SizeCommandLineStack returns the number of groups on the stack.
func SizeCommandLineStack() int {
	cmdLine.crit.Lock()
	defer cmdLine.crit.Unlock()
	return len(cmdLine.stack)
}

// GetCommandLinePref returns the value for the key in the top group of the
// stack. The value is removed from the group once it has been returned.
func GetCommandLinePref(key string) (bool, Value) {
	cmdLine.crit.Lock()
	defer cmdLine.crit.Unlock()

	if len(cmdLine.stack) == 0 {
		return false, nil
	}

	grp := cmdLine.stack[len(cmdLine.stack)-1]
	if v, ok := grp[key]; ok {
		delete(grp, key)
		return true, v
	}

	return false, nil
}
