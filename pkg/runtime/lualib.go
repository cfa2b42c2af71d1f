package runtime

import _ "embed"

// LibraryFileName is the file the JavaScript runtime is written to next to
// a translated module.
const LibraryFileName = "lualib.js"

// LibrarySource is the JavaScript runtime translated modules import.
//
//go:embed lualib.js
var LibrarySource []byte
