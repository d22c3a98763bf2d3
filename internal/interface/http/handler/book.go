package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	appbook "github.com/xiebiao/bookapi/internal/application/book"
	"github.com/xiebiao/bookapi/internal/domain/book"
	"github.com/xiebiao/bookapi/internal/interface/http/dto"
	apperrors "github.com/xiebiao/bookapi/pkg/errors"
	"github.com/xiebiao/bookapi/pkg/response"
)

// BookHandler 图书HTTP处理器
// 只负责参数绑定、调用用例、输出统一响应;错误到HTTP状态码的映射统一由response.Error完成
type BookHandler struct {
	listBooksUseCase  *appbook.ListBooksUseCase
	getBookUseCase    *appbook.GetBookUseCase
	createBookUseCase *appbook.CreateBookUseCase
	updateBookUseCase *appbook.UpdateBookUseCase
	deleteBookUseCase *appbook.DeleteBookUseCase
}

// NewBookHandler 创建图书处理器
func NewBookHandler(
	listBooksUseCase *appbook.ListBooksUseCase,
	getBookUseCase *appbook.GetBookUseCase,
	createBookUseCase *appbook.CreateBookUseCase,
	updateBookUseCase *appbook.UpdateBookUseCase,
	deleteBookUseCase *appbook.DeleteBookUseCase,
) *BookHandler {
	return &BookHandler{
		listBooksUseCase:  listBooksUseCase,
		getBookUseCase:    getBookUseCase,
		createBookUseCase: createBookUseCase,
		updateBookUseCase: updateBookUseCase,
		deleteBookUseCase: deleteBookUseCase,
	}
}

// ListBooks 图书列表
// @Summary      图书列表
// @Description  title与author为"或"关系,均为不区分大小写的部分匹配;total为分页前的总数
// @Tags         图书
// @Produce      json
// @Param        title   query string false "书名关键词"
// @Param        author  query string false "作者关键词"
// @Param        offset  query int    false "偏移量" default(0) minimum(0)
// @Param        limit   query int    false "每页数量" default(10) minimum(1)
// @Success      200 {object} response.Response{detail=dto.BookPageResponse}
// @Failure      400 {object} response.Response{detail=string} "参数错误"
// @Router       /books/ [get]
func (h *BookHandler) ListBooks(c *gin.Context) {
	var query dto.ListBooksQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, apperrors.InvalidArgument(dto.BindingMessage(err)))
		return
	}

	result, err := h.listBooksUseCase.Execute(c.Request.Context(), query.ToListRequest())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPage(c, result.Items, result.Total)
}

// GetBook 图书详情
// @Summary      获取图书
// @Description  返回图书及其详情,没有详情时detail为null
// @Tags         图书
// @Produce      json
// @Param        id path int true "图书ID"
// @Success      200 {object} response.Response{detail=dto.BookResponse}
// @Failure      400 {object} response.Response{detail=string} "ID不合法"
// @Failure      404 {object} response.Response{detail=string} "图书不存在"
// @Router       /books/{id} [get]
func (h *BookHandler) GetBook(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	item, err := h.getBookUseCase.Execute(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithItem(c, item)
}

// CreateBook 创建图书
// @Summary      创建图书
// @Description  可同时创建详情;提供detail时publisher与publishedDate必填
// @Tags         图书
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateBookRequest true "图书信息"
// @Success      200 {object} response.Response{detail=dto.BookResponse}
// @Failure      400 {object} response.Response{detail=string} "参数错误"
// @Router       /books/ [post]
func (h *BookHandler) CreateBook(c *gin.Context) {
	var req dto.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperrors.InvalidArgument(dto.BindingMessage(err)))
		return
	}

	item, err := h.createBookUseCase.Execute(c.Request.Context(), req.ToCreateRequest())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithItem(c, item)
}

// UpdateBook 更新图书
// @Summary      部分更新图书
// @Description  只覆盖请求中出现的字段;图书没有详情时按需创建
// @Tags         图书
// @Accept       json
// @Produce      json
// @Param        id      path int                   true "图书ID"
// @Param        request body dto.UpdateBookRequest true "需要修改的字段"
// @Success      200 {object} response.Response{detail=dto.BookResponse}
// @Failure      400 {object} response.Response{detail=string} "参数错误"
// @Failure      404 {object} response.Response{detail=string} "图书不存在"
// @Router       /books/{id} [put]
func (h *BookHandler) UpdateBook(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	var req dto.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperrors.InvalidArgument(dto.BindingMessage(err)))
		return
	}

	item, err := h.updateBookUseCase.Execute(c.Request.Context(), id, req.ToUpdateRequest())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithItem(c, item)
}

// DeleteBook 删除图书
// @Summary      删除图书
// @Description  先删除详情再删除图书
// @Tags         图书
// @Produce      json
// @Param        id path int true "图书ID"
// @Success      200 {object} response.Response{detail=string}
// @Failure      400 {object} response.Response{detail=string} "ID不合法"
// @Failure      404 {object} response.Response{detail=string} "图书不存在"
// @Router       /books/{id} [delete]
func (h *BookHandler) DeleteBook(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	if err := h.deleteBookUseCase.Execute(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithMessage(c, appbook.DeletedMessage)
}

// bindID 解析路径参数id
// 非整数直接返回400;是否为正数由领域服务判断
func bindID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, book.ErrInvalidBookID)
		return 0, false
	}
	return id, true
}
