package response

const (
	ServerError = "Server error, try again later"
	//----------------------
	MovieNotFound      = "Movie not found"
	MoviesNotFound     = "Movies not found"
	MovieAlreadyExist  = "Movie already exist"
	InvalidMovieId     = "Invalid movie id"
	InvalidSearchQuery = "Invalid search query"
	NoSearchResults    = "No search results"
	//----------------------
	CommentNotFound  = "Comment not found"
	CommentsNotFound = "Comments not found"
	InvalidCommentId = "Invalid comment id"
	//----------------------
	UserDataNotFound = "User data not found"
	//----------------------
	BadRequestBody = "Incorrect request body"
	//----------------------
	ErrorInMovieAdding   = "Error in adding the movie"
	ErrorInCommentAdding = "Error in adding the comment"
	//----------------------
)
