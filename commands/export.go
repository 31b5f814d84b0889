package commands

import (
	"context"
	"fmt"
	"sync"

	"hrmslite/attendance/logic"
	"hrmslite/attendance/model"

	"github.com/olivere/elastic"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const mappings = `{
"settings":{
  "number_of_shards":1,
  "number_of_replicas":0
},
"mappings":{
  "properties": {
    "employee_id": {
      "type": "long"
    },
    "date": {
      "type": "date"
    },
    "status": {
      "type": "keyword"
    }
  }
}
}

`

// exportJob is one cached record queued for indexing.
type exportJob struct {
	Record model.AttendanceRecord
	Pos    int
}

// exportErr holds the failure information for one record.
type exportErr struct {
	Pos   int
	Error error
}

func newExportCmd(conf *model.Config) *cobra.Command {
	var index string
	var numOfWorkers int

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Index the attendance set into Elasticsearch for reporting",
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := cmd.Flags().GetString("index")
			if err != nil {
				return fmt.Errorf("failed to return the string value of index flag: %v", err)
			}

			numOfWorkers, err := cmd.Flags().GetInt("numOfWorkers")
			if err != nil {
				return fmt.Errorf("failed to return the int value of numOfWorkers flag: %v", err)
			}

			client, err := elastic.NewClient(
				elastic.SetSniff(false),
				elastic.SetURL(conf.ESURL),
			)
			if err != nil {
				return fmt.Errorf("failed to connect to elasticsearch: %v", err)
			}

			ctx := context.Background()

			svc := logic.NewAttendanceService(conf.APIBaseURL)
			cache := logic.NewCache(svc)
			if err := cache.Load(ctx); err != nil {
				return err
			}

			execute(ctx, &numOfWorkers, cache.Records(), client, index)

			return nil
		},
	}

	exportCmd.PersistentFlags().StringVar(
		&index,
		"index",
		"attendance",
		"target index name",
	)

	exportCmd.PersistentFlags().IntVar(
		&numOfWorkers,
		"numOfWorkers",
		2,
		"number of workers",
	)

	return exportCmd
}

func execute(
	ctx context.Context,
	numWorkers *int,
	records []model.AttendanceRecord,
	client *elastic.Client,
	index string,
) {
	// if the index does not exist yet, create it with the mappings
	exists, err := client.IndexExists(index).Do(ctx)
	if err != nil {
		logrus.Errorf("failed to check index %s: %v", index, err)
		return
	}
	if !exists {
		_, err := client.CreateIndex(index).BodyString(mappings).Do(ctx)
		if err != nil {
			logrus.Errorf("CreateIndex() ERROR: %v", err)
			return
		}
	}

	indexer := logic.NewRecordIndexer(client, index)

	var wgWorkers sync.WaitGroup
	var wgCollectors sync.WaitGroup

	jobs := make(chan *exportJob)
	errors := make(chan *exportErr)

	for i := 0; i < *numWorkers; i++ {
		wgWorkers.Add(1)

		go worker(ctx, &wgWorkers, indexer, jobs, errors)
	}

	wgCollectors.Add(1)

	go sumErrors(&wgCollectors, errors)

	// sending job to the workers
	sendJobs(records, jobs)

	// wait until all jobs are done
	wgWorkers.Wait()
	close(errors)

	logrus.Info("Export finished.")
	wgCollectors.Wait()
}

func sendJobs(records []model.AttendanceRecord, jobs chan *exportJob) {
	defer close(jobs)

	for i, record := range records {
		jobs <- &exportJob{
			Record: record,
			Pos:    i + 1,
		}
	}
}

func worker(
	ctx context.Context,
	wg *sync.WaitGroup,
	indexer logic.RecordIndexer,
	jobs <-chan *exportJob,
	errors chan<- *exportErr,
) {
	defer wg.Done()

	for j := range jobs {
		record := j.Record

		err := indexer.IndexRecord(ctx, &record)
		if err != nil {
			logrus.Errorf("failed to index record %d err: %v", record.ID, err)
			errors <- &exportErr{
				Pos:   j.Pos,
				Error: err,
			}
		}
	}

	logrus.Info("worker done")
}

func sumErrors(
	wg *sync.WaitGroup,
	errors <-chan *exportErr,
) {
	defer wg.Done()

	failed := 0
	for range errors {
		failed++
	}

	if failed > 0 {
		logrus.Errorf("%d records failed to export", failed)
	}
}
