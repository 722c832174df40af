package domain

// Case binds the executable under test to one input artifact and the
// golden output it must produce
type Case struct {
	Name       string // Human-readable case name, relative to the suite root
	Binary     string // Path to the executable under test
	InputPath  string // Path to the input artifact passed as the sole argument
	GoldenPath string // Path to the golden file holding expected stdout
	Expected   string // Inline expected output, used when GoldenPath is empty
}
