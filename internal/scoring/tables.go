package scoring

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// tablesFile is the on-disk shape of a phrase-table override file. A table
// present in the file replaces the corresponding built-in wholesale; an
// absent table keeps the built-in.
type tablesFile struct {
	PeerIndicators    map[Category][]string `yaml:"peer_indicators"`
	TeacherIndicators map[Category][]string `yaml:"teacher_indicators"`
}

// LoadTables reads peer and teacher phrase tables from a YAML file. An empty
// path returns the built-in tables. A path that cannot be read or parsed is
// an error rather than a silent fallback to the built-ins.
func LoadTables(path string) (peer, teacher PhraseTable, err error) {
	if path == "" {
		return DefaultPeerIndicators(), DefaultTeacherIndicators(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading phrase tables: %w", err)
	}
	var f tablesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, nil, fmt.Errorf("parsing phrase tables %s: %w", path, err)
	}
	peer = DefaultPeerIndicators()
	if f.PeerIndicators != nil {
		peer = PhraseTable(f.PeerIndicators).Clone()
	}
	teacher = DefaultTeacherIndicators()
	if f.TeacherIndicators != nil {
		teacher = PhraseTable(f.TeacherIndicators).Clone()
	}
	return peer, teacher, nil
}
