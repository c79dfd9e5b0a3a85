package dashboard

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/grafana/grafana-sub060/internal/scene"
)

const (
	cloneSeparator = "-clone-"
	rowSeparator   = "-row-"
)

var panelKeyPattern = regexp.MustCompile(`^panel-(\d+)`)

// PanelKey is the key of the panel (or row) with the given document id.
func PanelKey(id int) string {
	return "panel-" + strconv.Itoa(id)
}

// GridItemKey is the key of the grid item wrapping panel id.
func GridItemKey(id int) string {
	return "grid-item-" + strconv.Itoa(id)
}

// CloneKey derives the key of repeat clone index from its template key.
func CloneKey(key string, index int) string {
	return key + cloneSeparator + strconv.Itoa(index)
}

// IsCloneKey reports whether key belongs to a generated repeat clone.
func IsCloneKey(key string) bool {
	return strings.Contains(key, cloneSeparator)
}

// IsCloneOf reports whether key is a generated clone of template.
func IsCloneOf(key, template string) bool {
	return strings.HasPrefix(key, template+cloneSeparator)
}

// PanelIDFromKey extracts the document id from a panel key, including
// clone and row-suffixed keys.
func PanelIDFromKey(key string) (int, bool) {
	m := panelKeyPattern.FindStringSubmatch(key)
	if m == nil {
		return 0, false
	}
	id, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return id, true
}

// suffixDescendantKeys appends suffix to the key of every descendant of
// obj, leaving obj itself alone.
func suffixDescendantKeys(obj scene.Object, suffix string) {
	for _, child := range obj.Children() {
		scene.Rekey(child, child.Key()+suffix)
		suffixDescendantKeys(child, suffix)
	}
}

func rowSuffix(index int) string {
	return rowSeparator + strconv.Itoa(index)
}
