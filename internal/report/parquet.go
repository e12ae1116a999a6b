package report

import (
	"path/filepath"

	"github.com/ChizhovVadim/Connect4Go/internal/benchmark"
	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/source"
	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/reader"
	"github.com/xitongsys/parquet-go/writer"
)

const parallel = 4

// Row is one solved benchmark position.
type Row struct {
	Moves    string `parquet:"name=moves, type=BYTE_ARRAY, convertedtype=UTF8"`
	Expected int32  `parquet:"name=expected, type=INT32"`
	Score    int32  `parquet:"name=score, type=INT32"`
	Nodes    int64  `parquet:"name=nodes, type=INT64"`
	TimeUs   int64  `parquet:"name=time_us, type=INT64"`
	OK       bool   `parquet:"name=ok, type=BOOLEAN"`
}

func NewRow(r *benchmark.Result) Row {
	return Row{
		Moves:    r.Item.Moves,
		Expected: int32(r.Item.Expected),
		Score:    int32(r.Score),
		Nodes:    r.Nodes,
		TimeUs:   r.Time.Microseconds(),
		OK:       r.OK(),
	}
}

// WriteParquet stores results as snappy-compressed parquet. The file is closed exactly once.
func WriteParquet(path string, results []benchmark.Result) error {
	fileWriter, err := local.NewLocalFileWriter(path)
	if err != nil {
		return err
	}
	if err := writeRows(fileWriter, results); err != nil {
		fileWriter.Close()
		return err
	}
	return fileWriter.Close()
}

func writeRows(fileWriter source.ParquetFile, results []benchmark.Result) error {
	parquetWriter, err := writer.NewParquetWriter(fileWriter, new(Row), parallel)
	if err != nil {
		return err
	}
	parquetWriter.CompressionType = parquet.CompressionCodec_SNAPPY

	for i := range results {
		if err := parquetWriter.Write(NewRow(&results[i])); err != nil {
			return err
		}
	}
	return parquetWriter.WriteStop()
}

func ReadParquet(path string) ([]Row, error) {
	if absPath, err := filepath.Abs(path); err == nil {
		path = absPath
	}
	fileReader, err := local.NewLocalFileReader(path)
	if err != nil {
		return nil, err
	}
	defer fileReader.Close()

	parquetReader, err := reader.NewParquetReader(fileReader, new(Row), parallel)
	if err != nil {
		return nil, err
	}
	defer parquetReader.ReadStop()

	var rows = make([]Row, int(parquetReader.GetNumRows()))
	if err := parquetReader.Read(&rows); err != nil {
		return nil, err
	}
	return rows, nil
}
