// Package logger builds *slog.Logger instances for this module and the
// programs using it.
//
// Every logger returned by New wraps its handler in a ContextHandler. On each
// record the handler appends the output of the registered ContextExtractor
// callbacks (threadcontext.LoggerExtractor adds the "context" group) and then
// the scope attributes stored in the context with WithScope. executor.Submit
// uses the scope to tag the context of each task with "task_id" and
// "executor", so anything the task logs with the *Context methods carries
// both.
//
//	log := logger.New(
//		logger.WithEnvironment(logger.EnvProduction, "indexer"),
//		logger.WithContextExtractors(threadcontext.LoggerExtractor()),
//	)
//	logger.SetAsDefault(log)
//
//	ctx = logger.WithScope(ctx, logger.Component("reindex"))
//	log.InfoContext(ctx, "batch done", logger.Duration(time.Since(start)))
//
// Config and NewFromConfig read COMMONS_LOG_LEVEL, COMMONS_LOG_FORMAT,
// COMMONS_ENV and COMMONS_SERVICE_NAME through package config. An explicit
// level or format beats the environment preset.
//
// Error and Errors return an empty attribute for nil errors, so they can be
// passed unconditionally.
package logger
