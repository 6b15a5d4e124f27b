package corpus

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
)

type sourceKind int

const (
	sourceLocal sourceKind = iota
	sourceRemote
)

// classifySource decides whether a reference-data source string names a
// local file or a remote HTTP resource. A string rooted at / is always
// local. It is remote when the text before the first dot carries a scheme,
// when it mentions localhost, or when its leading path segment looks like a
// hostname (contains a dot) or a host:port pair. Everything else is a
// relative local path.
func classifySource(s string) sourceKind {
	if strings.HasPrefix(s, "/") {
		return sourceLocal
	}
	if strings.Contains(strings.SplitN(s, ".", 2)[0], "://") {
		return sourceRemote
	}
	if strings.Contains(s, "localhost") {
		return sourceRemote
	}
	head := strings.SplitN(s, "/", 2)[0]
	if strings.Contains(head, ".") {
		return sourceRemote
	}
	if strings.Contains(head, ":") {
		return sourceRemote
	}
	return sourceLocal
}

// readSource returns the raw bytes of a reference-data source, reading a
// local file or fetching a remote resource as classified above.
func readSource(ctx context.Context, src string) ([]byte, error) {
	if classifySource(src) == sourceLocal {
		return os.ReadFile(src)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src, nil)
	if err != nil {
		return nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d fetching %s", resp.StatusCode, src)
	}
	return io.ReadAll(resp.Body)
}
