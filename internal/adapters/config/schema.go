package config

// Kilnfile represents the structure of the kiln.yaml configuration file.
//
// BuildDir, Generator and Architecture are pointers so an explicit empty
// string can be told apart from an absent key. An empty generator or
// architecture omits the cmake flag; an empty build_dir is rejected.
type Kilnfile struct {
	Version      string            `yaml:"version"`
	BuildDir     *string           `yaml:"build_dir"`
	Generator    *string           `yaml:"generator"`
	Architecture *string           `yaml:"architecture"`
	Executable   string            `yaml:"executable"`
	CMake        string            `yaml:"cmake"`
	Environment  map[string]string `yaml:"environment"`
}
