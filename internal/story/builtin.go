package story

import (
	"embed"
	"fmt"
)

//go:embed stories/*.yaml
var builtinFS embed.FS

// Built-in stories ship inside the binary and register at startup.
// A broken embedded story is a build defect, so parse failures panic.
func init() {
	entries, err := builtinFS.ReadDir("stories")
	if err != nil {
		panic(fmt.Sprintf("story: cannot read embedded stories: %v", err))
	}
	for _, e := range entries {
		data, err := builtinFS.ReadFile("stories/" + e.Name())
		if err != nil {
			panic(fmt.Sprintf("story: cannot read embedded %s: %v", e.Name(), err))
		}
		s, err := Parse(data)
		if err != nil {
			panic(fmt.Sprintf("story: embedded %s: %v", e.Name(), err))
		}
		Register(s)
	}
}
