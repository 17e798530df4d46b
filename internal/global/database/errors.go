package database

import (
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
)

// MySQL 唯一索引冲突错误码
const mysqlErrDuplicateEntry = 1062

// IsDuplicateErr 判断是否唯一索引冲突。
// MySQL 靠错误码判断，测试用的 sqlite 只能匹配错误文本。
func IsDuplicateErr(err error) bool {
	if err == nil {
		return false
	}
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == mysqlErrDuplicateEntry
	}
	return strings.Contains(err.Error(), "UNIQUE constraint")
}
