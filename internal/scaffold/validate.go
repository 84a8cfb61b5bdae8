package scaffold

import (
	"fmt"
	"regexp"
	"strings"
)

// Python identifier validation regex: letters, digits, and underscores,
// not starting with a digit.
var identifierRegex = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// Python version validation regex: strict two-component numeric form.
var pythonVersionRegex = regexp.MustCompile(`^\d+\.\d+$`)

// Validate checks the resolved configuration before generation begins.
// The name is checked before the version and the first violation found is
// returned, so exactly one error surfaces per invocation.
func Validate(cfg Config) error {
	if err := ValidateName(cfg.Name); err != nil {
		return err
	}
	return ValidatePythonVersion(cfg.PythonVersion)
}

// ValidateName checks that name is a valid Python package identifier that
// does not collide with a keyword, dunder name, or stdlib module.
func ValidateName(name string) error {
	if !identifierRegex.MatchString(name) {
		return &DetailError{
			Type:     "invalid name",
			Message:  fmt.Sprintf("%q is not a valid Python identifier: only letters, digits, and underscores are allowed, and it cannot start with a digit", name),
			Hint:     fmt.Sprintf("Try %q.", SanitizeName(name)),
			Cause:    ErrNameInvalid,
			Location: name,
		}
	}

	if pythonKeywords[name] {
		return &DetailError{
			Type:     "reserved name",
			Message:  fmt.Sprintf("%q is a Python keyword", name),
			Hint:     "Choose a name that is not a language keyword.",
			Cause:    ErrNameReserved,
			Location: name,
		}
	}

	if strings.HasPrefix(name, "__") && strings.HasSuffix(name, "__") {
		return &DetailError{
			Type:     "reserved name",
			Message:  fmt.Sprintf("%q is a dunder name reserved by Python", name),
			Hint:     "Choose a name without leading and trailing double underscores.",
			Cause:    ErrNameReserved,
			Location: name,
		}
	}

	if reservedNames[name] || stdlibModules[name] {
		return &DetailError{
			Type:     "reserved name",
			Message:  fmt.Sprintf("%q conflicts with a Python standard library module or reserved name", name),
			Hint:     "Choose a name that does not shadow the standard library.",
			Cause:    ErrNameReserved,
			Location: name,
		}
	}

	return nil
}

// ValidatePythonVersion checks that version is in strict X.Y form.
func ValidatePythonVersion(version string) error {
	if !pythonVersionRegex.MatchString(version) {
		return &DetailError{
			Type:     "invalid python version",
			Message:  fmt.Sprintf("%q is not a valid Python version", version),
			Hint:     "Expected format: X.Y (e.g. 3.14).",
			Cause:    ErrVersionInvalid,
			Location: version,
		}
	}
	return nil
}

// pythonKeywords is the set of Python hard keywords.
var pythonKeywords = map[string]bool{
	"False": true, "None": true, "True": true,
	"and": true, "as": true, "assert": true, "async": true, "await": true,
	"break": true, "class": true, "continue": true, "def": true, "del": true,
	"elif": true, "else": true, "except": true, "finally": true, "for": true,
	"from": true, "global": true, "if": true, "import": true, "in": true,
	"is": true, "lambda": true, "nonlocal": true, "not": true, "or": true,
	"pass": true, "raise": true, "return": true, "try": true, "while": true,
	"with": true, "yield": true,
}

// reservedNames are names that are not keywords or stdlib modules but would
// still break the generated project layout or common tooling.
var reservedNames = map[string]bool{
	"__init__":    true,
	"__main__":    true,
	"__pycache__": true,
	"test":        true,
	"tests":       true,
	"setup":       true,
	"site":        true,
}

// stdlibModules is the set of Python standard library top-level module
// names a project must not shadow.
var stdlibModules = map[string]bool{
	"abc": true, "aifc": true, "argparse": true, "array": true, "ast": true,
	"asyncio": true, "atexit": true, "base64": true, "bdb": true, "bisect": true,
	"builtins": true, "bz2": true, "calendar": true, "cmath": true, "cmd": true,
	"code": true, "codecs": true, "codeop": true, "collections": true,
	"colorsys": true, "compileall": true, "concurrent": true, "configparser": true,
	"contextlib": true, "contextvars": true, "copy": true, "copyreg": true,
	"cProfile": true, "csv": true, "ctypes": true, "curses": true,
	"dataclasses": true, "datetime": true, "dbm": true, "decimal": true,
	"difflib": true, "dis": true, "doctest": true, "email": true,
	"encodings": true, "ensurepip": true, "enum": true, "errno": true,
	"faulthandler": true, "fcntl": true, "filecmp": true, "fileinput": true,
	"fnmatch": true, "fractions": true, "ftplib": true, "functools": true,
	"gc": true, "getopt": true, "getpass": true, "gettext": true, "glob": true,
	"graphlib": true, "grp": true, "gzip": true, "hashlib": true, "heapq": true,
	"hmac": true, "html": true, "http": true, "idlelib": true, "imaplib": true,
	"importlib": true, "inspect": true, "io": true, "ipaddress": true,
	"itertools": true, "json": true, "keyword": true, "linecache": true,
	"locale": true, "logging": true, "lzma": true, "mailbox": true,
	"marshal": true, "math": true, "mimetypes": true, "mmap": true,
	"modulefinder": true, "multiprocessing": true, "netrc": true, "numbers": true,
	"operator": true, "optparse": true, "os": true, "pathlib": true, "pdb": true,
	"pickle": true, "pickletools": true, "pkgutil": true, "platform": true,
	"plistlib": true, "poplib": true, "posixpath": true, "pprint": true,
	"profile": true, "pstats": true, "pty": true, "pwd": true, "py_compile": true,
	"pyclbr": true, "pydoc": true, "queue": true, "quopri": true, "random": true,
	"re": true, "readline": true, "reprlib": true, "resource": true,
	"rlcompleter": true, "runpy": true, "sched": true, "secrets": true,
	"select": true, "selectors": true, "shelve": true, "shlex": true,
	"shutil": true, "signal": true, "smtplib": true, "socket": true,
	"socketserver": true, "sqlite3": true, "ssl": true, "stat": true,
	"statistics": true, "string": true, "stringprep": true, "struct": true,
	"subprocess": true, "symtable": true, "sys": true, "sysconfig": true,
	"syslog": true, "tabnanny": true, "tarfile": true, "tempfile": true,
	"termios": true, "textwrap": true, "threading": true, "time": true,
	"timeit": true, "tkinter": true, "token": true, "tokenize": true,
	"tomllib": true, "trace": true, "traceback": true, "tracemalloc": true,
	"tty": true, "turtle": true, "types": true, "typing": true,
	"unicodedata": true, "unittest": true, "urllib": true, "uuid": true,
	"venv": true, "warnings": true, "wave": true, "weakref": true,
	"webbrowser": true, "wsgiref": true, "xml": true, "xmlrpc": true,
	"zipapp": true, "zipfile": true, "zipimport": true, "zlib": true,
	"zoneinfo": true,
}
