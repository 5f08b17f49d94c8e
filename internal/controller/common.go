package controller

import (
	"database/sql"

	"overseer/internal/common"
	"overseer/internal/deprovision"
)

const (
	sessionCachePrefix = "session"
)

var dbInstance *sql.DB
var deprovisionService *deprovision.Service
var serviceAccountSecret string
var serviceLogs *chan<- common.ServiceLog
var sessionSigningToken string
