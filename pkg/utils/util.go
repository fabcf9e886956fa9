package utils

import (
	"Mirsui/pkg/context"
	"bytes"
	"fmt"
	"runtime"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/speps/go-hashids/v2"
)

func PanicTrace(err interface{}) string {
	buf := new(bytes.Buffer)
	fmt.Fprintf(buf, "%v\n", err)
	for i := 2; ; i++ {
		pc, file, line, ok := runtime.Caller(i)
		if !ok {
			break
		}
		fmt.Fprintf(buf, "%s:%d (0x%x)\n", file, line, pc)
	}
	return buf.String()
}

// GenHashID 将自增ID编码为对外分享码
func GenHashID(salt string, id int) string {
	hd := hashids.NewData()
	hd.Salt = salt
	hd.MinLength = 12
	h, _ := hashids.NewWithData(hd)
	e, _ := h.Encode([]int{id})
	return e
}

// DecodeHashID 分享码还原为自增ID，非法分享码返回0
func DecodeHashID(salt string, code string) int {
	hd := hashids.NewData()
	hd.Salt = salt
	hd.MinLength = 12
	h, _ := hashids.NewWithData(hd)
	ids, err := h.DecodeWithError(code)
	if err != nil || len(ids) == 0 {
		return 0
	}
	return ids[0]
}

// GetQueryOrTokenUserID 优先取 query 里的 user_id（查看他人主页），否则取令牌里的
func GetQueryOrTokenUserID(c *gin.Context) (uint64, error) {
	if v := c.Query("user_id"); v != "" {
		return strconv.ParseUint(v, 10, 64)
	}
	return context.GetUserID(c)
}
