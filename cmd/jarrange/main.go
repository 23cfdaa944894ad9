package main

import (
	"context"
	"io"
	"os"
	"os/signal"

	logger "github.com/metal3d/jarrange/log"
)

const (
	usage = `%[1]s arranges the members of Java types: fields, initializers,
constructors, methods and nested types are put in a fixed order, getters are
followed by their setters and overloads are kept together. By default, it
prints the result to stdout. To allow %[1]s to write to the files, use the
--write flag.

Without file or directory, %[1]s reads the source from stdin, or arranges the
Maven project of the current directory.`
)

var (
	version  = "master" // changed at compilation time
	log      = logger.GetLogger()
	examples = []string{
		"$ %[1]s arrange --write src/main/java/demo/Person.java",
		"$ %[1]s arrange --diff ./src",
		"$ %[1]s arrange --check",
		"$ cat Person.java | %[1]s arrange",
	}
	completionExamples = []string{
		"$ %[1]s completion bash",
		"$ %[1]s completion bash --no-documentation",
		"$ %[1]s completion zsh",
		"$ %[1]s completion fish",
		"$ %[1]s completion powershell",
	}

	defaultOutput io.Writer = os.Stdout
	stdin                   = os.Stdin
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := buildMainCommand().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
