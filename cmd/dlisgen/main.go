package main

import (
	"fmt"
	"os"

	"github.com/dlis-toolkit/dlis-writer/pkg/attribute"
	"github.com/dlis-toolkit/dlis-writer/pkg/consts"
	"github.com/dlis-toolkit/dlis-writer/pkg/logging"
	"github.com/dlis-toolkit/dlis-writer/pkg/option"

	dlis "github.com/dlis-toolkit/dlis-writer"
)

func main() {
	log := logging.NewLogger(logging.NewSimpleLogger(os.Stderr, logging.LEVEL_TRACE, true))

	graph := &dlis.Graph{
		Origin: &dlis.Origin{
			Name:         "ORIGIN",
			FileID:       "demo well log",
			WellName:     "WELL-42",
			FieldName:    "DEMO FIELD",
			Company:      "Acme Logging",
			ProducerName: "dlisgen",
			Product:      "dlis-writer",
		},
		Channels: []*dlis.Channel{
			{Name: "TDEP", LongName: "Tool depth", RepresentationCode: consts.FDOUBL, Units: "0.1 in"},
			{Name: "GR", LongName: "Gamma ray", RepresentationCode: consts.FDOUBL, Units: "gAPI"},
		},
	}

	frame := &dlis.Frame{
		Name:      "MAIN",
		IndexType: "BOREHOLE-DEPTH",
		Channels:  graph.Channels,
		Rows:      dlis.SliceRows(demoRows()),
	}
	graph.Frames = append(graph.Frames, frame)

	if err := dlis.AttachOriginReference(graph, 1); err != nil {
		panic(fmt.Errorf("failed to attach origin reference: %w", err))
	}

	err := dlis.WriteDlis(graph, "/tmp/demo.dlis",
		option.WithVisibleRecordLength(8192),
		option.WithStorageSetIdentifier("Default Storage Set"),
		option.WithLogger(log),
	)
	if err != nil {
		panic(fmt.Errorf("failed to write DLIS file: %w", err))
	}
}

func demoRows() [][]attribute.Value {
	rows := make([][]attribute.Value, 0, 5)
	for i := 0; i < 5; i++ {
		depth := 100.0 + float64(i)*0.5
		gr := 60.0 + float64(i)
		rows = append(rows, []attribute.Value{
			attribute.FloatValue(depth),
			attribute.FloatValue(gr),
		})
	}
	return rows
}
