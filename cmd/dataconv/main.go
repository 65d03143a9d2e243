// Command dataconv converts a document between JSON, YAML and MessagePack
// through the Element tree, preserving key order and numeric kinds where the
// target format can express them.
//
// Usage:
//
//	dataconv -from json -to yaml < in.json > out.yaml
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	dataapi "github.com/mschae23/data-api"
	"github.com/mschae23/data-api/codec"
)

func main() {
	var from, to string
	flag.StringVar(&from, "from", "json", "input format: json, yaml or msgpack")
	flag.StringVar(&to, "to", "json", "output format: json, yaml or msgpack")
	flag.Parse()

	in, err := io.ReadAll(os.Stdin)
	if err != nil {
		fatalf("read stdin: %v", err)
	}

	el, err := parse(from, in)
	if err != nil {
		reportErrs(err)
	}
	out, err := serialize(to, el)
	if err != nil {
		reportErrs(err)
	}
	if _, err := os.Stdout.Write(out); err != nil {
		fatalf("write stdout: %v", err)
	}
}

func parse(format string, data []byte) (dataapi.Element, error) {
	switch format {
	case "json":
		return codec.FromJSON(data)
	case "yaml":
		return codec.FromYAML(data)
	case "msgpack":
		return codec.FromMsgpack(data)
	default:
		return dataapi.Absent(), fmt.Errorf("unknown input format %q", format)
	}
}

func serialize(format string, el dataapi.Element) ([]byte, error) {
	switch format {
	case "json":
		return codec.ToJSON(el)
	case "yaml":
		return codec.ToYAML(el)
	case "msgpack":
		return codec.ToMsgpack(el)
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

func reportErrs(err error) {
	if errs, ok := dataapi.AsErrors(err); ok {
		for _, e := range errs {
			fmt.Fprintln(os.Stderr, e.Description())
		}
		os.Exit(1)
	}
	fatalf("%v", err)
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}
