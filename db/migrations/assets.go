package migrations

import (
	"embed"
	"net/http"
)

// DirName is the directory of the request journal migrations inside Assets
const DirName = "sql"

//go:embed sql/*.sql
var files embed.FS

// Assets holds the request journal schema
var Assets http.FileSystem = http.FS(files)
