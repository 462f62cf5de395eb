// Package puzzle handles daily Letter Boxed puzzles: fetching the
// published puzzle from the official page, normalizing inputs and
// archiving the date-to-input history in a blobstore or DynamoDB.
package puzzle
