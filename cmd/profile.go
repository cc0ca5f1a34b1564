package cmd

import (
	"errors"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"locus/codegen"
	"locus/report"

	"github.com/pelletier/go-toml"
)

// ProfileFileName is the name of the build profile looked up next to the
// source being compiled.
const ProfileFileName = "locus.toml"

// BuildProfile is the configuration of a compilation.
type BuildProfile struct {
	// The target of the generated modules.
	TargetTriple string
	DataLayout   string

	// The extension given to output files.
	OutputExt string

	// Whether non-exhaustive matches are errors.
	StrictMatch bool

	// The log level of the reporter.
	LogLevel int
}

// DefaultProfile returns the profile used when no build profile is found.
func DefaultProfile() *BuildProfile {
	return &BuildProfile{
		TargetTriple: codegen.DefaultTargetTriple,
		DataLayout:   codegen.DefaultDataLayout,
		OutputExt:    ".ll",
		StrictMatch:  true,
		LogLevel:     report.LogLevelVerbose,
	}
}

// tomlProfileFile represents the profile file as it is encoded in TOML.
type tomlProfileFile struct {
	Build *tomlBuildProfile `toml:"build"`
}

// tomlBuildProfile represents a build profile as it is encoded in TOML.  Every
// field is optional: absent fields keep their default values.
type tomlBuildProfile struct {
	TargetTriple string `toml:"target-triple"`
	DataLayout   string `toml:"data-layout"`
	OutputExt    string `toml:"output-ext"`
	StrictMatch  *bool  `toml:"strict-match"`
	LogLevel     string `toml:"loglevel"`
}

// LoadProfile loads the build profile at path.
func LoadProfile(path string) (*BuildProfile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buff, err := ioutil.ReadAll(f)
	if err != nil {
		return nil, err
	}

	return parseProfile(buff)
}

// parseProfile decodes a build profile and merges it onto the default profile.
func parseProfile(buff []byte) (*BuildProfile, error) {
	tpf := &tomlProfileFile{}
	if err := toml.Unmarshal(buff, tpf); err != nil {
		return nil, err
	}

	prof := DefaultProfile()
	if tpf.Build == nil {
		return prof, nil
	}

	if tpf.Build.TargetTriple != "" {
		prof.TargetTriple = tpf.Build.TargetTriple
	}

	if tpf.Build.DataLayout != "" {
		prof.DataLayout = tpf.Build.DataLayout
	}

	if tpf.Build.OutputExt != "" {
		if !strings.HasPrefix(tpf.Build.OutputExt, ".") {
			return nil, fmt.Errorf("output extension `%s` must begin with a `.`", tpf.Build.OutputExt)
		}

		prof.OutputExt = tpf.Build.OutputExt
	}

	if tpf.Build.StrictMatch != nil {
		prof.StrictMatch = *tpf.Build.StrictMatch
	}

	if tpf.Build.LogLevel != "" {
		lvl, err := report.ParseLogLevel(tpf.Build.LogLevel)
		if err != nil {
			return nil, err
		}

		prof.LogLevel = lvl
	}

	return prof, nil
}

// selectProfile determines the build profile of a compilation.  If no profile
// path is given, the profile file next to the source path is used if it
// exists.
func selectProfile(srcPath, profPath string) (*BuildProfile, error) {
	if profPath != "" {
		return LoadProfile(profPath)
	}

	dir := srcPath
	if finfo, err := os.Stat(srcPath); err != nil || !finfo.IsDir() {
		dir = filepath.Dir(srcPath)
	}

	prof, err := LoadProfile(filepath.Join(dir, ProfileFileName))
	if errors.Is(err, os.ErrNotExist) {
		return DefaultProfile(), nil
	}

	return prof, err
}

// outputPath returns the path of the output file of a source file: the source
// path with its extension replaced by ext.
func outputPath(srcPath, ext string) string {
	return strings.TrimSuffix(srcPath, filepath.Ext(srcPath)) + ext
}
