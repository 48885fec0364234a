package resultstore

import "embed"

//go:embed migrations
var migrationsFS embed.FS

//go:embed queries/insert_run.sql
var insertRunSQL string

//go:embed queries/insert_rule_result.sql
var insertRuleResultSQL string

//go:embed queries/last_run.sql
var lastRunSQL string

//go:embed queries/list_runs.sql
var listRunsSQL string
