package apierrors

const (
	MsgInvalidID              = "invalidID"
	MsgInvalidTaskPayload     = "invalidTaskPayload"
	MsgInvalidReorderPayload  = "invalidReorderPayload"
	MsgInvalidPosition        = "invalidPosition"
	MsgInvalidSubtaskPayload  = "invalidSubtaskPayload"
	MsgInvalidNotePayload     = "invalidNotePayload"
	MsgInvalidCategoryPayload = "invalidCategoryPayload"

	MsgTaskNotFound      = "taskNotFound"
	MsgSubtaskNotFound   = "subtaskNotFound"
	MsgNoteNotFound      = "noteNotFound"
	MsgCategoryNotFound  = "categoryNotFound"
	MsgCategoryNameTaken = "categoryNameTaken"

	MsgFailListTasks    = "failListTasks"
	MsgFailGetTask      = "failGetTask"
	MsgFailCreateTask   = "failCreateTask"
	MsgFailUpdateTask   = "failUpdateTask"
	MsgFailDeleteTask   = "failDeleteTask"
	MsgFailReorderTasks = "failReorderTasks"
	MsgFailMoveTask     = "failMoveTask"
	MsgFailTaskStats    = "failTaskStats"
	MsgFailExportTasks  = "failExportTasks"

	MsgFailListSubtasks  = "failListSubtasks"
	MsgFailCreateSubtask = "failCreateSubtask"
	MsgFailUpdateSubtask = "failUpdateSubtask"
	MsgFailDeleteSubtask = "failDeleteSubtask"
	MsgFailToggleSubtask = "failToggleSubtask"

	MsgFailListNotes  = "failListNotes"
	MsgFailCreateNote = "failCreateNote"
	MsgFailUpdateNote = "failUpdateNote"
	MsgFailDeleteNote = "failDeleteNote"

	MsgFailListCategories = "failListCategories"
	MsgFailGetCategory    = "failGetCategory"
	MsgFailCreateCategory = "failCreateCategory"
	MsgFailUpdateCategory = "failUpdateCategory"
	MsgFailDeleteCategory = "failDeleteCategory"

	MsgFailClearData = "failClearData"
	MsgDataCleared   = "dataCleared"
)
