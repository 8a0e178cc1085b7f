// Command torosphere validates, inspects and exports torospherical heads.
package main

import (
	"github.com/golang/glog"
	"github.com/soypat/torosphere/internal/cli"
)

func main() {
	defer glog.Flush()
	if err := cli.Execute(); err != nil {
		glog.Fatalf("%+v", err)
	}
}
