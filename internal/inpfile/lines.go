package inpfile

import (
	"bytes"
	"os"
)

// ReadLines reads path and splits it into lines, keeping each line's
// terminator. Untouched lines can then be written back byte-for-byte,
// whether the source used LF or CRLF endings.
func ReadLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var lines []string
	for len(data) > 0 {
		i := bytes.IndexByte(data, '\n')
		if i < 0 {
			lines = append(lines, string(data))
			break
		}
		lines = append(lines, string(data[:i+1]))
		data = data[i+1:]
	}
	return lines, nil
}
