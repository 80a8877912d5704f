package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// 订单号前缀：客户订单 / 分销订单 / 生产订单
const (
	OrderPrefixCustomer     = "ORD"
	OrderPrefixDistributor  = "DORD"
	OrderPrefixManufacturer = "MORD"
)

// newOrderNumber 生成订单号：<前缀>-<UTC时间戳>-<4位随机后缀>
func newOrderNumber(prefix string) string {
	suffix := strings.ToUpper(uuid.New().String()[:4])
	return fmt.Sprintf("%s-%s-%s", prefix, time.Now().UTC().Format("20060102150405"), suffix)
}
