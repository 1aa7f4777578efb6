package prog

import "flag"

// FlagSet wraps a [flag.FlagSet]. Flags shared by several programs are
// registered on demand through its methods, so that each flag is only defined
// once.
type FlagSet struct {
	*flag.FlagSet
	json *bool
}

// JSON returns a pointer to the value of the -json flag, registering it if
// needed.
func (fs *FlagSet) JSON() *bool {
	if fs.json == nil {
		var json bool
		fs.BoolVar(&json, "json", false, "show the output in JSON")
		fs.json = &json
	}
	return fs.json
}
