/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package main

import (
	"github.com/josephgoksu/roadmapper/cmd"
	"github.com/josephgoksu/roadmapper/internal/logger"
)

func main() {
	defer logger.HandlePanic(nil)
	cmd.Execute()
}
