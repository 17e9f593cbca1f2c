// Package logger builds *slog.Logger values for the curp binaries.
//
// New takes functional options for level, format, output and static
// attributes. WithContextExtractors adds attributes pulled from the request
// context on every record; requestid.LoggerExtractor is the usual one.
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.Env, "curpd"),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//		logger.WithRedactedKeys(logger.PersonalDataKeys...),
//	)
//	logger.SetAsDefault(log)
//
// Applicant data must not be written in clear text. Use Code with a masked
// value, and enable WithRedactedKeys as a backstop for attributes logged
// under the PersonalDataKeys names.
//
// Attribute helpers such as Error, State, Reason and Duration keep key names
// consistent across packages. Error and Errors return an empty Attr for nil
// errors, so they can be passed unconditionally.
package logger
