package textsecure

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
)

var configRegex = regexp.MustCompile(`\s*([\w.]+)=\s*(.+?)\s*;\s*`)

// ParseConfig parses a configuration file and calls the callback for each key-value pair.
//
// Lines look like "textsecure.server=https://chat.example.org;". Lines that do
// not match are ignored. A missing file is not an error.
func ParseConfig(path string, cb func(string, string)) error {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			Debug("Config file '%s' not found, using defaults", path)
			return nil
		}
		return fmt.Errorf("textsecure: open config %s: %w", path, err)
	}
	defer file.Close()

	Debug("Parsing config file '%s'", path)
	scan := bufio.NewScanner(file)
	for scan.Scan() {
		line := strings.TrimSpace(scan.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		groups := configRegex.FindStringSubmatch(line)
		if len(groups) != 3 {
			continue
		}
		cb(groups[1], groups[2])
	}
	if err := scan.Err(); err != nil {
		return fmt.Errorf("textsecure: reading config %s: %w", path, err)
	}
	return nil
}

// parseIntWithDefault parses an integer string with a default value if parsing
// fails or the value does not fit in an int.
func parseIntWithDefault(s string, defaultValue int) int {
	result, err := strconv.Atoi(s)
	if err != nil {
		return defaultValue
	}
	return result
}
