package policy

// defaultExcludedDirs 是默认跳过的目录名：依赖、构建产物、IDE 与缓存目录等。
var defaultExcludedDirs = []string{
	"node_modules",
	"venv",
	"env",
	"__pycache__",
	"dist",
	"build",
	"lib",
	"libs",
	"vendor",
	"packages",
	".idea",
	".vs",
	"ipch",
	"FileContentIndex",
	"Debug",
	"Release",
	"x64",
	"x86",
	".git",
	".svn",
	".hg",
	".tox",
	".pytest_cache",
	".mypy_cache",
	".coverage",
	".vscode",
	".DS_Store",
	"__MACOSX",
	"target",
	"out",
	"bin",
	"obj",
	"tmp",
	"temp",
	"cache",
	"logs",
	"coverage",
	".next",
	".nuxt",
	// 只比较叶子目录名，这一条实际不会命中。
	"public/build",
	".sass-cache",
	".gradle",
	"gradle",
	".cargo",
	"migrations",
	"fixtures",
	"assets",
	"docs",
}

// defaultExcludedExtensions 是默认跳过的后缀，支持多段后缀与通配符。
var defaultExcludedExtensions = []string{
	".exe", ".dll", ".so", ".dylib",
	".xml", ".txt", ".md", ".rst",
	".pyc", ".pyo", ".pyd",
	".min.js", ".min.css",
	".test.js", ".spec.js",
	".log", ".lock", ".map",
	".vsidx",
	".ipch",
	".suo",
	".db",
	".cache",
	".gitignore",
	".iml",
	".swp",
	".tmp",
	".bak",
	".old",
	".orig",
	".pdf", ".doc", ".docx",
	".xls", ".xlsx",
	".ppt", ".pptx",
	".zip", ".rar", ".7z",
	".tar", ".gz", ".bz2",
	".png", ".jpg", ".jpeg",
	".gif", ".svg", ".ico",
	".mp3", ".mp4", ".avi",
	".wav", ".flac", ".ogg",
	".ttf", ".woff", ".eot",
	".woff2", ".otf",
	".env",
	".config",
	".conf",
	".properties",
	".d.ts",
	".min.map",
	".sum",
	".mod",
	".pb.go",
	".generated.*",
	".g.dart",
	".freezed.dart",
	".mock.ts",
	".stub.php",
}

// defaultExcludedFilenames 是默认跳过的具体文件名：锁文件与工具配置文件。
var defaultExcludedFilenames = []string{
	"package-lock.json",
	"yarn.lock",
	"pnpm-lock.yaml",
	"composer.lock",
	"Gemfile.lock",
	"poetry.lock",
	"Cargo.lock",
	"go.sum",
	".eslintrc",
	".prettierrc",
	".editorconfig",
	".browserslistrc",
	"tsconfig.json",
	"jest.config.js",
	"babel.config.js",
	"webpack.config.js",
	"rollup.config.js",
	"vite.config.js",
	"next.config.js",
	"nuxt.config.js",
	"tailwind.config.js",
	"postcss.config.js",
	"karma.conf.js",
	"Dockerfile",
	"docker-compose.yml",
	"Makefile",
	"Rakefile",
	"Jenkinsfile",
}
