package logic

import (
	"context"
	"strconv"

	"hrmslite/attendance/model"

	"github.com/olivere/elastic"
)

type RecordIndexer interface {
	IndexRecord(ctx context.Context, record *model.AttendanceRecord) error
}

type RecordIndexerImpl struct {
	esClient *elastic.Client
	index    string
}

func NewRecordIndexer(esClient *elastic.Client, index string) *RecordIndexerImpl {
	return &RecordIndexerImpl{
		esClient: esClient,
		index:    index,
	}
}

// IndexRecord stores one attendance record in the export index.
func (idx *RecordIndexerImpl) IndexRecord(
	ctx context.Context,
	record *model.AttendanceRecord,
) error {
	_, err := idx.esClient.Index().Type("_doc").
		Index(idx.index).
		Id(strconv.Itoa(record.ID)).
		BodyJson(record).
		Do(ctx)
	return err
}
