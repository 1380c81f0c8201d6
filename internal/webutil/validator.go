// internal/webutil/validator.go
package webutil

import (
	"log"
	"reflect"
	"strings"

	"github.com/go-playground/locales/ja"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	ja_translations "github.com/go-playground/validator/v10/translations/ja"
)

// Validator はアプリケーション全体で共有されるバリデータインスタンスです。
var Validator *validator.Validate

// Trans はエラーメッセージを翻訳するためのトランスレータです。
var Trans ut.Translator

var fieldNameTranslations = map[string]string{
	"level":  "レベル",
	"word":   "単語",
	"status": "ステータス",
	"answer": "回答",
}

func translatedField(fe validator.FieldError) string {
	if name, ok := fieldNameTranslations[fe.Field()]; ok {
		return name
	}
	return fe.Field()
}

func init() {
	Validator = validator.New()

	// JSONタグからフィールド名を取得する
	Validator.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	japanese := ja.New()
	uni := ut.New(japanese, japanese)
	var found bool
	Trans, found = uni.GetTranslator("ja")
	if !found {
		log.Fatal("translator not found")
	}

	if err := ja_translations.RegisterDefaultTranslations(Validator, Trans); err != nil {
		log.Fatal(err)
	}

	Validator.RegisterTranslation("required", Trans, func(ut ut.Translator) error {
		return ut.Add("required", "{0}は必須項目です。", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T("required", translatedField(fe))
		return t
	})

	Validator.RegisterTranslation("oneof", Trans, func(ut ut.Translator) error {
		return ut.Add("oneof", "{0}は[{1}]のいずれかを指定してください。", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T("oneof", translatedField(fe), fe.Param())
		return t
	})
}
