package buildinfo

import "fmt"

const Graffiti = " ____    _    __  __\n/ ___|  / \\   \\ \\/ /\n\\___ \\ / _ \\   \\  / \n ___) / ___ \\  /  \\ \n|____/_/   \\_\\/_/\\_\\\n\n"

var (
	BuildTag string = "v0.0.0"
	Name     string = "SAX"
	Time     string = ""
)

type buildinfo struct{}

func (buildinfo) Tag() string {
	return BuildTag
}

func (buildinfo) Name() string {
	return Name
}

func (buildinfo) Time() string {
	return Time
}

// String is the one-line version banner printed by both binaries.
func (b buildinfo) String() string {
	return fmt.Sprintf("%s: %s, %s", b.Name(), b.Time(), b.Tag())
}

var Info buildinfo
