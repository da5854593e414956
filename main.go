// contentsync converts the Unlock Egypt content spreadsheet into the
// JSON document bundled with the mobile app.
package main

import "github.com/unlockegypt/contentsync/cmd"

func main() {
	cmd.Execute()
}
