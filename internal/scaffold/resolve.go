package scaffold

// Built-in defaults used when a value is left unset on the non-interactive
// path or accepted at a prompt.
const (
	DefaultProjectName   = "my_project"
	DefaultDescription   = "A new Python project"
	DefaultAuthor        = "Your Name"
	DefaultPythonVersion = "3.13"
)

// CurrentDirName is the sentinel project name that selects scaffolding
// into the current working directory.
const CurrentDirName = "."

// ResolveName resolves the raw project name against the base name of the
// current working directory. If raw is the "." sentinel, the name is derived
// from dirname: every character outside [A-Za-z0-9_] becomes an underscore,
// an empty result falls back to DefaultProjectName, and a leading digit gets
// an underscore prefix. Otherwise raw passes through unchanged.
func ResolveName(raw, dirname string) (name string, useCWD bool) {
	if raw != CurrentDirName {
		return raw, false
	}
	return SanitizeName(dirname), true
}

// SanitizeName converts an arbitrary directory name to a valid Python
// package name.
func SanitizeName(dirname string) string {
	result := make([]byte, 0, len(dirname))
	for i := 0; i < len(dirname); i++ {
		c := dirname[i]
		if c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_' {
			result = append(result, c)
		} else {
			result = append(result, '_')
		}
	}

	if len(result) == 0 {
		return DefaultProjectName
	}

	// Ensure it doesn't start with a digit
	if result[0] >= '0' && result[0] <= '9' {
		result = append([]byte{'_'}, result...)
	}

	return string(result)
}

// ApplyDefaults fills every unset field of opts with its built-in default:
// constant strings for name, description, author, and python version, and
// enabled for every feature flag. Applying it to an already-complete
// Options is a no-op.
func ApplyDefaults(opts Options) Options {
	if opts.Name == "" {
		opts.Name = DefaultProjectName
	}
	if opts.Description == "" {
		opts.Description = DefaultDescription
	}
	if opts.Author == "" {
		opts.Author = DefaultAuthor
	}
	if opts.PythonVersion == "" {
		opts.PythonVersion = DefaultPythonVersion
	}

	enabled := true
	if opts.CI == nil {
		opts.CI = &enabled
	}
	if opts.Devcontainer == nil {
		opts.Devcontainer = &enabled
	}
	if opts.PreCommit == nil {
		opts.PreCommit = &enabled
	}
	if opts.Docker == nil {
		opts.Docker = &enabled
	}
	if opts.Diagrams == nil {
		opts.Diagrams = &enabled
	}
	if opts.Assistant == nil {
		opts.Assistant = &enabled
	}

	return opts
}

// Resolve converts complete Options into a Config. Nil flags are treated
// as disabled; callers wanting the enabled-by-default fast path apply
// ApplyDefaults first.
func Resolve(opts Options, useCWD bool) Config {
	flag := func(p *bool) bool { return p != nil && *p }

	return Config{
		Name:          opts.Name,
		Description:   opts.Description,
		Author:        opts.Author,
		PythonVersion: opts.PythonVersion,
		CI:            flag(opts.CI),
		Devcontainer:  flag(opts.Devcontainer),
		PreCommit:     flag(opts.PreCommit),
		Docker:        flag(opts.Docker),
		Diagrams:      flag(opts.Diagrams),
		Assistant:     flag(opts.Assistant),
		UseCWD:        useCWD,
	}
}
