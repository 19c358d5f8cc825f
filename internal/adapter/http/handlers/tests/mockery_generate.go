package tests

// The service doubles in mocks_test.go follow mockery's expecter layout and can
// be regenerated into ./mocks when the ports change.
//
// Usage:
//   go generate ./internal/adapter/http/handlers/tests
//
//go:generate mockery --name TaskService --dir ../../../../core/ports --output ./mocks --outpkg mocks --filename task_service_mock.go --with-expecter
//go:generate mockery --name SubtaskService --dir ../../../../core/ports --output ./mocks --outpkg mocks --filename subtask_service_mock.go --with-expecter
//go:generate mockery --name NoteService --dir ../../../../core/ports --output ./mocks --outpkg mocks --filename note_service_mock.go --with-expecter
//go:generate mockery --name CategoryService --dir ../../../../core/ports --output ./mocks --outpkg mocks --filename category_service_mock.go --with-expecter
//go:generate mockery --name SettingsService --dir ../../../../core/ports --output ./mocks --outpkg mocks --filename settings_service_mock.go --with-expecter
//go:generate mockery --name TaskExporter --dir ../../../../core/ports --output ./mocks --outpkg mocks --filename task_exporter_mock.go --with-expecter
