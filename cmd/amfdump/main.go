// If you are AI: This is the main entrypoint for the amfdump CLI.
// It decodes one payload from a file, a hex string or stdin and prints the
// envelope as JSON.

package main

import (
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/hawolt/league-of-legends-rtmp/internal/core/message"
	"github.com/hawolt/league-of-legends-rtmp/internal/core/protocol/amf"
)

// main is the entrypoint for the amfdump CLI.
// It reads one payload, decodes it and prints the envelope as JSON on stdout.
func main() {
	hexInput := flag.String("hex", "", "Payload as a hex string, whitespace allowed")
	inPath := flag.String("in", "", "Path to a file holding the raw payload")
	trace := flag.Bool("trace", false, "Log every decode step to stderr")
	summary := flag.Bool("summary", false, "Print a typed Flex summary to stderr")
	compact := flag.Bool("compact", false, "Print the envelope as one-line JSON")
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("amfdump: ")

	payload, err := readPayload(*hexInput, *inPath, flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}

	decoder := amf.NewDecoder()
	if *trace {
		decoder.SetTracer(amf.NewLogTracer(log.New(os.Stderr, "", log.LstdFlags), true))
	}

	envelope, err := decoder.Decode(payload, nil)
	if err != nil {
		log.Fatalf("decode: %v", err)
	}

	if err := printEnvelope(envelope, *compact); err != nil {
		log.Fatalf("render: %v", err)
	}

	if *summary {
		printSummary(envelope)
	}
}

// readPayload resolves the payload from the hex flag, a file or stdin.
// A path of "-" or no input at all reads stdin.
func readPayload(hexInput, inPath, argPath string) ([]byte, error) {
	if inPath != "" && argPath != "" {
		return nil, fmt.Errorf("-in and a positional file are mutually exclusive")
	}
	path := inPath
	if path == "" {
		path = argPath
	}

	if hexInput != "" {
		if path != "" {
			return nil, fmt.Errorf("-hex and file input are mutually exclusive")
		}
		cleaned := strings.Join(strings.Fields(hexInput), "")
		payload, err := hex.DecodeString(cleaned)
		if err != nil {
			return nil, fmt.Errorf("invalid hex payload: %w", err)
		}
		return payload, nil
	}

	if path == "" || path == "-" {
		payload, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return payload, nil
	}

	payload, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read payload: %w", err)
	}
	return payload, nil
}

// printEnvelope renders the decoded envelope as JSON on stdout.
func printEnvelope(envelope *amf.TypedObject, compact bool) error {
	native := amf.ToNative(envelope)

	var out []byte
	var err error
	if compact {
		out, err = json.Marshal(native)
	} else {
		out, err = json.MarshalIndent(native, "", "  ")
	}
	if err != nil {
		return err
	}

	fmt.Println(string(out))
	return nil
}

// printSummary prints the typed view of the envelope to stderr when its data
// field carries a known Flex message.
func printSummary(object *amf.TypedObject) {
	envelope, err := message.ParseEnvelope(object)
	if err != nil {
		log.Printf("summary: %v", err)
		return
	}

	log.Printf("result=%q invokeId=%d", envelope.Result, envelope.InvokeID)

	acknowledge, err := envelope.Acknowledge()
	if err != nil {
		log.Printf("summary: %v", err)
		return
	}

	log.Printf("destination=%q messageId=%s correlationId=%s",
		acknowledge.Destination, acknowledge.MessageID, acknowledge.CorrelationID)
}
