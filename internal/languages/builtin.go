package languages

// 微信小程序三类文件的语言标签。
// 输出报表时这三类优先展示，顺序与 PriorityLanguages 一致。
const (
	WeChatTemplate = "微信模板"
	WeChatStyle    = "微信样式"
	WeChatScript   = "微信脚本"
)

// PriorityLanguages 是报表中固定优先展示的语言标签（按声明顺序）。
var PriorityLanguages = []string{WeChatTemplate, WeChatStyle, WeChatScript}

// builtinLanguages 返回内置的“后缀 -> 语言标签”表。
// 每次调用返回新 map，调用方可以放心修改。
func builtinLanguages() map[string]string {
	return map[string]string{
		".c":    "C",
		".cpp":  "C++",
		".h":    "C/C++ Header",
		".py":   "Python",
		".js":   "JavaScript",
		".java": "Java",
		".css":  "CSS",

		".wxml": WeChatTemplate,
		".wxss": WeChatStyle,
		".wxs":  WeChatScript,

		".cs":     "C#",
		".go":     "Go",
		".rs":     "Rust",
		".rb":     "Ruby",
		".php":    "PHP",
		".swift":  "Swift",
		".kt":     "Kotlin",
		".ts":     "TypeScript",
		".jsx":    "React JSX",
		".tsx":    "React TSX",
		".vue":    "Vue",
		".scala":  "Scala",
		".dart":   "Dart",
		".r":      "R",
		".m":      "Objective-C",
		".mm":     "Objective-C++",
		".sql":    "SQL",
		".sh":     "Shell",
		".ps1":    "PowerShell",
		".lua":    "Lua",
		".ex":     "Elixir",
		".exs":    "Elixir Script",
		".elm":    "Elm",
		".fs":     "F#",
		".coffee": "CoffeeScript",
		".sass":   "Sass",
		".scss":   "SCSS",
		".less":   "Less",
		".tf":     "Terraform",
		".yaml":   "YAML",
		".yml":    "YAML",
		".json":   "JSON",
		".proto":  "Protocol Buffers",

		".asm":    "汇编语言",
		".s":      "汇编语言",
		".f90":    "Fortran",
		".f95":    "Fortran",
		".f":      "Fortran",
		".for":    "Fortran",
		".pas":    "Pascal",
		".pp":     "Pascal",
		".inc":    "Pascal",
		".bas":    "Basic",
		".vb":     "Visual Basic",
		".vbs":    "VBScript",
		".clj":    "Clojure",
		".cljc":   "Clojure",
		".cljs":   "ClojureScript",
		".erl":    "Erlang",
		".hrl":    "Erlang",
		".hs":     "Haskell",
		".lhs":    "Haskell",
		".ml":     "OCaml",
		".mli":    "OCaml",
		".groovy": "Groovy",
		".gvy":    "Groovy",
		".gradle": "Gradle",
		".tcl":    "Tcl",
		".asp":    "ASP",
		".aspx":   "ASP.NET",
		".cshtml": "Razor",
		".vbhtml": "Razor",
		".jsp":    "JSP",
		".jspx":   "JSP",
		".php4":   "PHP",
		".php5":   "PHP",
		".phtml":  "PHP",
		".nim":    "Nim",
		".cr":     "Crystal",
		".d":      "D",
		".v":      "Verilog",
		".vhd":    "VHDL",
		".sv":     "SystemVerilog",
		".pro":    "Prolog",
		// .pl 同时可能是 Perl 与 Prolog，这里按 Prolog 处理。
		".pl":         "Prolog",
		".cmake":      "CMake",
		".dockerfile": "Dockerfile",
		".jenkins":    "Jenkins",
		".bat":        "Batch",
		".cmd":        "Batch",
		".ino":        "Arduino",
		".pde":        "Processing",
		".sol":        "Solidity",
		".nix":        "Nix",
		".dhall":      "Dhall",
		".graphql":    "GraphQL",
		".gql":        "GraphQL",
		".hcl":        "HCL",
		".toml":       "TOML",
		".ini":        "INI",
	}
}

// builtinCommentMarkers 返回内置的“后缀 -> 单行注释前缀”表。
// 没有条目的后缀不做注释剔除，所有非空行都计为代码。
func builtinCommentMarkers() map[string]string {
	return map[string]string{
		".py":     "#",
		".js":     "//",
		".java":   "//",
		".c":      "//",
		".cpp":    "//",
		".cs":     "//",
		".go":     "//",
		".rs":     "//",
		".rb":     "#",
		".php":    "//",
		".swift":  "//",
		".kt":     "//",
		".ts":     "//",
		".jsx":    "//",
		".tsx":    "//",
		".scala":  "//",
		".dart":   "//",
		".r":      "#",
		".sh":     "#",
		".ps1":    "#",
		".lua":    "--",
		".ex":     "#",
		".exs":    "#",
		".elm":    "--",
		".fs":     "//",
		".coffee": "#",
		".sass":   "//",
		".scss":   "//",
		".less":   "//",
		".tf":     "#",
		".yaml":   "#",
		".yml":    "#",
		".json":   "//",
		".proto":  "//",
		".asm":    ";",
		".s":      ";",
		".f90":    "!",
		".f95":    "!",
		".f":      "!",
		".for":    "!",
		".pas":    "//",
		".pp":     "//",
		".inc":    "//",
		".bas":    "'",
		".vb":     "'",
		".vbs":    "'",
		".clj":    ";",
		".cljc":   ";",
		".cljs":   ";",
		".erl":    "%",
		".hrl":    "%",
		".hs":     "--",
		".lhs":    "--",
		".ml":     "(*",
		".mli":    "(*",
		".groovy": "//",
		".gvy":    "//",
		".gradle": "//",
		".tcl":    "#",
		".asp":    "'",
		".aspx":   "'",
		".cshtml": "@*",
		".vbhtml": "@*",
		".jsp":    "<%--",
		".jspx":   "<%--",
		".php4":   "//",
		".php5":   "//",
		".phtml":  "//",
		".nim":    "#",
		".cr":     "#",
		".d":      "//",
		".v":      "//",
		".vhd":    "--",
		".sv":     "//",
		".pro":    "%",
		// 与语言表保持一致，.pl 按 Prolog 的 % 注释处理。
		".pl":         "%",
		".cmake":      "#",
		".dockerfile": "#",
		".jenkins":    "#",
		".bat":        "REM",
		".cmd":        "REM",
		".ino":        "//",
		".pde":        "//",
		".sol":        "//",
		".nix":        "#",
		".dhall":      "--",
		".graphql":    "#",
		".gql":        "#",
		".hcl":        "#",
		".toml":       "#",
		".ini":        ";",
	}
}
