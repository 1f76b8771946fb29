package input

import "runtime"

var isMac = runtime.GOOS == "darwin"
