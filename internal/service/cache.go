package service

import (
	"context"
	"encoding/json"
	"fmt"
	"movie_catalog/db/redis"
	errorHandler "movie_catalog/pkg/error"
	"strconv"
	"strings"
	"time"
)

const (
	jwtDataCachePrefix   = "jwtKey:"
	roleNamesCachePrefix = "roleIds:"
)

//------------------------------------------
//------------------------------------------

func GetJwtDataCache(ctx context.Context, key string) (string, error) {
	result, err := redis.GetRedis(ctx, jwtDataCachePrefix+key)
	return result, err
}

//------------------------------------------
//------------------------------------------

func GetRoleNamesCache(ctx context.Context, roleIds []int64) ([]string, error) {
	key := int64SliceToString(roleIds, ",")
	result, err := redis.GetRedis(ctx, roleNamesCachePrefix+key)
	if err != nil && err.Error() != "redis: nil" {
		return nil, nil
	}
	if result != "" {
		var jsonData []string
		err = json.Unmarshal([]byte(result), &jsonData)
		if err != nil {
			return nil, err
		}
		return jsonData, nil
	}
	return nil, err
}

func SetRoleNamesCache(ctx context.Context, roleIds []int64, names []string, duration time.Duration) error {
	jsonData, err := json.Marshal(names)
	if err != nil {
		errorMessage := fmt.Sprintf("Redis Error on saving role names: %v", err)
		errorHandler.SaveError(errorMessage, err)
		return err
	}

	key := int64SliceToString(roleIds, ",")
	err = redis.SetRedis(ctx, roleNamesCachePrefix+key, jsonData, duration)
	if err != nil {
		errorMessage := fmt.Sprintf("Redis Error on saving role names: %v", err)
		errorHandler.SaveError(errorMessage, err)
	}
	return err
}

//------------------------------------------
//------------------------------------------

func int64SliceToString(nums []int64, delimiter string) string {
	strNums := make([]string, len(nums))
	for i, num := range nums {
		strNums[i] = strconv.FormatInt(num, 10)
	}
	return strings.Join(strNums, delimiter)
}
