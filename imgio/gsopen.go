package imgio

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/carbocation/pfx"
)

// MaybeOpenFromGoogleStorage opens path from Google Storage when it carries
// the gs:// prefix, and from the local filesystem otherwise.
func MaybeOpenFromGoogleStorage(path string, client *storage.Client) (io.ReadCloser, error) {
	if !strings.HasPrefix(path, "gs://") {
		return os.Open(path)
	}

	if client == nil {
		return nil, fmt.Errorf("%s: no storage client was configured", path)
	}

	// Detect the bucket and the path to the actual file
	pathParts := strings.SplitN(strings.TrimPrefix(path, "gs://"), "/", 2)
	if len(pathParts) != 2 {
		return nil, fmt.Errorf("tried to split your google storage path into 2 parts, but got %d: %v", len(pathParts), pathParts)
	}

	rdr, err := client.Bucket(pathParts[0]).Object(pathParts[1]).NewReader(context.Background())
	if err != nil {
		return nil, pfx.Err(fmt.Errorf("%s: %s", path, err))
	}

	return rdr, nil
}
