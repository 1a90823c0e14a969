// Package client provides the optional violation-archive backends. The
// archive mirrors the on-disk violation log into a queryable store selected
// by archive_provider: "es", "mongo" or "mysql".
package client

import (
	"sync"

	"cyrusbot/model"

	"github.com/sirupsen/logrus"
)

const searchLimit = 100

// ArchiveClient stores and queries archived violations.
type ArchiveClient interface {
	AddViolation(*model.Violation) error
	SearchViolations(userID int64) ([]*model.Violation, error)
}

// Provider maps archive_provider config values to constructors. A provider
// panics on an unreachable backend; it is only invoked at startup.
var Provider = make(map[string]func(string) ArchiveClient)

var archiveClient ArchiveClient
var archiveClientOnce sync.Once

func init() {
	defer func() {
		for i := range Provider {
			logrus.Infof("registr_archive_provider:%v", i)
		}
	}()
	Provider["mongo"] = func(url string) ArchiveClient {
		archiveClientOnce.Do(func() {
			c, err := newMongodbClient(url)
			if err != nil {
				logrus.Panic(err)
			}
			archiveClient = c
			logrus.Infof("new mongo_client:%+v", c)
		})
		return archiveClient
	}
	Provider["mysql"] = func(url string) ArchiveClient {
		archiveClientOnce.Do(func() {
			c, err := newMysqlClient(url)
			if err != nil {
				logrus.Panic(err)
			}
			archiveClient = c
			logrus.Infof("new mysql_client:%+v", c)
		})
		return archiveClient
	}
	Provider["es"] = func(url string) ArchiveClient {
		archiveClientOnce.Do(func() {
			es, err := newEsClient(url)
			if err != nil {
				logrus.Panic(err)
			}
			archiveClient = es
			logrus.Infof("new es_client:%+v", es)
		})
		return archiveClient
	}
}
