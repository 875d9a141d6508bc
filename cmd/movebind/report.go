package main

import (
	"fmt"
	"io"

	"github.com/reoring/movebind"
	"github.com/reoring/movebind/i18n"
)

// writeError prints one line per issue carried by err, titled in the
// configured language. Other errors are printed as is.
func writeError(w io.Writer, err error) {
	iss, ok := movebind.AsIssues(err)
	if !ok {
		fmt.Fprintf(w, "error: %v\n", err)
		return
	}
	for _, it := range iss {
		path := it.Path
		if path == "" {
			path = "/"
		}
		fmt.Fprintf(w, "error: %s at %s: %s\n", i18n.T(it.Code, issueData(it.Params)), path, it.Message)
	}
}

func issueData(params map[string]any) map[string]string {
	if len(params) == 0 {
		return nil
	}
	out := make(map[string]string, len(params))
	for k, v := range params {
		out[k] = fmt.Sprint(v)
	}
	return out
}
